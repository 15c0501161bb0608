package packet

// Packet is a decoded MQTT 5.0 control packet of any kind. Kind says which
// concrete struct Value holds; Go has no closed sum type, so this mirrors
// the property system's own Value interface{} convention rather than
// introducing a separate mechanism.
//
// Value is always one of: *Connect, *ConnectAck, *Publish, *PublishAck,
// *PublishReceived, *PublishRelease, *PublishComplete, *Subscribe,
// *SubscribeAck, *Unsubscribe, *UnsubscribeAck, *PingRequest, *PingResponse,
// *Disconnect, or *Authenticate, matching Kind.
type Packet struct {
	Kind  Type
	Value interface{}
}

// Connect returns the packet's value as *Connect, or nil, false if Kind is
// not Connect.
func (p Packet) Connect() (*Connect, bool) {
	v, ok := p.Value.(*Connect)
	return v, ok
}

// ConnectAck returns the packet's value as *ConnectAck, or nil, false if
// Kind is not ConnectAck.
func (p Packet) ConnectAck() (*ConnectAck, bool) {
	v, ok := p.Value.(*ConnectAck)
	return v, ok
}

// Publish returns the packet's value as *Publish, or nil, false if Kind is
// not Publish.
func (p Packet) Publish() (*Publish, bool) {
	v, ok := p.Value.(*Publish)
	return v, ok
}

// PublishAck returns the packet's value as *PublishAck, or nil, false if
// Kind is not PublishAck.
func (p Packet) PublishAck() (*PublishAck, bool) {
	v, ok := p.Value.(*PublishAck)
	return v, ok
}

// PublishReceived returns the packet's value as *PublishReceived, or nil,
// false if Kind is not PublishReceived.
func (p Packet) PublishReceived() (*PublishReceived, bool) {
	v, ok := p.Value.(*PublishReceived)
	return v, ok
}

// PublishRelease returns the packet's value as *PublishRelease, or nil,
// false if Kind is not PublishRelease.
func (p Packet) PublishRelease() (*PublishRelease, bool) {
	v, ok := p.Value.(*PublishRelease)
	return v, ok
}

// PublishComplete returns the packet's value as *PublishComplete, or nil,
// false if Kind is not PublishComplete.
func (p Packet) PublishComplete() (*PublishComplete, bool) {
	v, ok := p.Value.(*PublishComplete)
	return v, ok
}

// Subscribe returns the packet's value as *Subscribe, or nil, false if
// Kind is not Subscribe.
func (p Packet) Subscribe() (*Subscribe, bool) {
	v, ok := p.Value.(*Subscribe)
	return v, ok
}

// SubscribeAck returns the packet's value as *SubscribeAck, or nil, false
// if Kind is not SubscribeAck.
func (p Packet) SubscribeAck() (*SubscribeAck, bool) {
	v, ok := p.Value.(*SubscribeAck)
	return v, ok
}

// Unsubscribe returns the packet's value as *Unsubscribe, or nil, false
// if Kind is not Unsubscribe.
func (p Packet) Unsubscribe() (*Unsubscribe, bool) {
	v, ok := p.Value.(*Unsubscribe)
	return v, ok
}

// UnsubscribeAck returns the packet's value as *UnsubscribeAck, or nil,
// false if Kind is not UnsubscribeAck.
func (p Packet) UnsubscribeAck() (*UnsubscribeAck, bool) {
	v, ok := p.Value.(*UnsubscribeAck)
	return v, ok
}

// Disconnect returns the packet's value as *Disconnect, or nil, false if
// Kind is not Disconnect.
func (p Packet) Disconnect() (*Disconnect, bool) {
	v, ok := p.Value.(*Disconnect)
	return v, ok
}

// Authenticate returns the packet's value as *Authenticate, or nil, false
// if Kind is not Authenticate.
func (p Packet) Authenticate() (*Authenticate, bool) {
	v, ok := p.Value.(*Authenticate)
	return v, ok
}
