package packet

// Each acknowledgement and control kind that carries a reason code gets its
// own distinct Go type here rather than sharing one enum across all fifteen
// kinds. A PublishAckReason can never be handed to a function expecting a
// SubscribeAckReason; the type system prevents crossing them, which is this
// repository's answer to the spec's reason-code design question.

// ConnectReason is the reason code carried by a CONNACK packet.
type ConnectReason byte

const (
	ConnectSuccess                     ConnectReason = 0x00
	ConnectUnspecifiedError            ConnectReason = 0x80
	ConnectMalformedPacket             ConnectReason = 0x81
	ConnectProtocolError               ConnectReason = 0x82
	ConnectImplementationSpecificError ConnectReason = 0x83
	ConnectUnsupportedProtocolVersion  ConnectReason = 0x84
	ConnectClientIdentifierNotValid    ConnectReason = 0x85
	ConnectBadUsernameOrPassword       ConnectReason = 0x86
	ConnectNotAuthorized               ConnectReason = 0x87
	ConnectServerUnavailable           ConnectReason = 0x88
	ConnectServerBusy                  ConnectReason = 0x89
	ConnectBanned                      ConnectReason = 0x8A
	ConnectBadAuthenticationMethod     ConnectReason = 0x8C
	ConnectTopicNameInvalid            ConnectReason = 0x90
	ConnectPacketTooLarge              ConnectReason = 0x95
	ConnectQuotaExceeded               ConnectReason = 0x97
	ConnectPayloadFormatInvalid        ConnectReason = 0x99
	ConnectRetainNotSupported          ConnectReason = 0x9A
	ConnectQoSNotSupported             ConnectReason = 0x9B
	ConnectUseAnotherServer            ConnectReason = 0x9C
	ConnectServerMoved                 ConnectReason = 0x9D
	ConnectConnectionRateExceeded      ConnectReason = 0x9F
)

var connectReasons = map[ConnectReason]bool{
	ConnectSuccess: true, ConnectUnspecifiedError: true, ConnectMalformedPacket: true,
	ConnectProtocolError: true, ConnectImplementationSpecificError: true,
	ConnectUnsupportedProtocolVersion: true, ConnectClientIdentifierNotValid: true,
	ConnectBadUsernameOrPassword: true, ConnectNotAuthorized: true,
	ConnectServerUnavailable: true, ConnectServerBusy: true, ConnectBanned: true,
	ConnectBadAuthenticationMethod: true, ConnectTopicNameInvalid: true,
	ConnectPacketTooLarge: true, ConnectQuotaExceeded: true,
	ConnectPayloadFormatInvalid: true, ConnectRetainNotSupported: true,
	ConnectQoSNotSupported: true, ConnectUseAnotherServer: true,
	ConnectServerMoved: true, ConnectConnectionRateExceeded: true,
}

func ParseConnectReason(b byte) (ConnectReason, error) {
	r := ConnectReason(b)
	if !connectReasons[r] {
		return 0, ErrInvalidConnectReason
	}
	return r, nil
}

// PublishAckReason is the reason code carried by a PUBACK packet.
type PublishAckReason byte

const (
	PublishAckSuccess                     PublishAckReason = 0x00
	PublishAckNoMatchingSubscribers       PublishAckReason = 0x10
	PublishAckUnspecifiedError            PublishAckReason = 0x80
	PublishAckImplementationSpecificError PublishAckReason = 0x83
	PublishAckNotAuthorized               PublishAckReason = 0x87
	PublishAckTopicNameInvalid            PublishAckReason = 0x90
	PublishAckPacketIdentifierInUse       PublishAckReason = 0x91
	PublishAckQuotaExceeded               PublishAckReason = 0x97
	PublishAckPayloadFormatInvalid        PublishAckReason = 0x99
)

var publishAckReasons = map[PublishAckReason]bool{
	PublishAckSuccess: true, PublishAckNoMatchingSubscribers: true,
	PublishAckUnspecifiedError: true, PublishAckImplementationSpecificError: true,
	PublishAckNotAuthorized: true, PublishAckTopicNameInvalid: true,
	PublishAckPacketIdentifierInUse: true, PublishAckQuotaExceeded: true,
	PublishAckPayloadFormatInvalid: true,
}

func ParsePublishAckReason(b byte) (PublishAckReason, error) {
	r := PublishAckReason(b)
	if !publishAckReasons[r] {
		return 0, ErrInvalidPublishAckReason
	}
	return r, nil
}

// PublishReceivedReason is the reason code carried by a PUBREC packet. Its
// legal value set is identical to PublishAckReason's, but it is kept as a
// distinct type so a PUBREC reason can never be passed where a PUBACK
// reason is expected.
type PublishReceivedReason byte

const (
	PublishReceivedSuccess                     PublishReceivedReason = 0x00
	PublishReceivedNoMatchingSubscribers       PublishReceivedReason = 0x10
	PublishReceivedUnspecifiedError            PublishReceivedReason = 0x80
	PublishReceivedImplementationSpecificError PublishReceivedReason = 0x83
	PublishReceivedNotAuthorized               PublishReceivedReason = 0x87
	PublishReceivedTopicNameInvalid            PublishReceivedReason = 0x90
	PublishReceivedPacketIdentifierInUse       PublishReceivedReason = 0x91
	PublishReceivedQuotaExceeded               PublishReceivedReason = 0x97
	PublishReceivedPayloadFormatInvalid        PublishReceivedReason = 0x99
)

var publishReceivedReasons = map[PublishReceivedReason]bool{
	PublishReceivedSuccess: true, PublishReceivedNoMatchingSubscribers: true,
	PublishReceivedUnspecifiedError: true, PublishReceivedImplementationSpecificError: true,
	PublishReceivedNotAuthorized: true, PublishReceivedTopicNameInvalid: true,
	PublishReceivedPacketIdentifierInUse: true, PublishReceivedQuotaExceeded: true,
	PublishReceivedPayloadFormatInvalid: true,
}

func ParsePublishReceivedReason(b byte) (PublishReceivedReason, error) {
	r := PublishReceivedReason(b)
	if !publishReceivedReasons[r] {
		return 0, ErrInvalidPublishReceivedReason
	}
	return r, nil
}

// PublishReleaseReason is the reason code carried by a PUBREL packet.
type PublishReleaseReason byte

const (
	PublishReleaseSuccess                  PublishReleaseReason = 0x00
	PublishReleasePacketIdentifierNotFound PublishReleaseReason = 0x92
)

var publishReleaseReasons = map[PublishReleaseReason]bool{
	PublishReleaseSuccess: true, PublishReleasePacketIdentifierNotFound: true,
}

func ParsePublishReleaseReason(b byte) (PublishReleaseReason, error) {
	r := PublishReleaseReason(b)
	if !publishReleaseReasons[r] {
		return 0, ErrInvalidPublishReleaseReason
	}
	return r, nil
}

// PublishCompleteReason is the reason code carried by a PUBCOMP packet.
type PublishCompleteReason byte

const (
	PublishCompleteSuccess                  PublishCompleteReason = 0x00
	PublishCompletePacketIdentifierNotFound PublishCompleteReason = 0x92
)

var publishCompleteReasons = map[PublishCompleteReason]bool{
	PublishCompleteSuccess: true, PublishCompletePacketIdentifierNotFound: true,
}

func ParsePublishCompleteReason(b byte) (PublishCompleteReason, error) {
	r := PublishCompleteReason(b)
	if !publishCompleteReasons[r] {
		return 0, ErrInvalidPublishCompleteReason
	}
	return r, nil
}

// SubscribeAckReason is one reason code within a SUBACK packet's reason
// list, one per filter in the originating SUBSCRIBE.
type SubscribeAckReason byte

const (
	SubscribeAckGrantedQoS0                         SubscribeAckReason = 0x00
	SubscribeAckGrantedQoS1                         SubscribeAckReason = 0x01
	SubscribeAckGrantedQoS2                         SubscribeAckReason = 0x02
	SubscribeAckUnspecifiedError                    SubscribeAckReason = 0x80
	SubscribeAckImplementationSpecificError         SubscribeAckReason = 0x83
	SubscribeAckNotAuthorized                       SubscribeAckReason = 0x87
	SubscribeAckTopicFilterInvalid                  SubscribeAckReason = 0x8F
	SubscribeAckPacketIdentifierInUse               SubscribeAckReason = 0x91
	SubscribeAckQuotaExceeded                        SubscribeAckReason = 0x97
	SubscribeAckSharedSubscriptionsNotSupported      SubscribeAckReason = 0x9E
	SubscribeAckSubscriptionIdentifiersNotSupported SubscribeAckReason = 0xA1
	SubscribeAckWildcardSubscriptionsNotSupported   SubscribeAckReason = 0xA2
)

var subscribeAckReasons = map[SubscribeAckReason]bool{
	SubscribeAckGrantedQoS0: true, SubscribeAckGrantedQoS1: true, SubscribeAckGrantedQoS2: true,
	SubscribeAckUnspecifiedError: true, SubscribeAckImplementationSpecificError: true,
	SubscribeAckNotAuthorized: true, SubscribeAckTopicFilterInvalid: true,
	SubscribeAckPacketIdentifierInUse: true, SubscribeAckQuotaExceeded: true,
	SubscribeAckSharedSubscriptionsNotSupported: true,
	SubscribeAckSubscriptionIdentifiersNotSupported: true,
	SubscribeAckWildcardSubscriptionsNotSupported:   true,
}

func ParseSubscribeAckReason(b byte) (SubscribeAckReason, error) {
	r := SubscribeAckReason(b)
	if !subscribeAckReasons[r] {
		return 0, ErrInvalidSubscribeAckReason
	}
	return r, nil
}

// UnsubscribeAckReason is one reason code within an UNSUBACK packet's
// reason list, one per filter in the originating UNSUBSCRIBE.
type UnsubscribeAckReason byte

const (
	UnsubscribeAckSuccess                     UnsubscribeAckReason = 0x00
	UnsubscribeAckNoSubscriptionExisted        UnsubscribeAckReason = 0x11
	UnsubscribeAckUnspecifiedError             UnsubscribeAckReason = 0x80
	UnsubscribeAckImplementationSpecificError  UnsubscribeAckReason = 0x83
	UnsubscribeAckNotAuthorized                UnsubscribeAckReason = 0x87
	UnsubscribeAckTopicFilterInvalid           UnsubscribeAckReason = 0x8F
	UnsubscribeAckPacketIdentifierInUse        UnsubscribeAckReason = 0x91
)

var unsubscribeAckReasons = map[UnsubscribeAckReason]bool{
	UnsubscribeAckSuccess: true, UnsubscribeAckNoSubscriptionExisted: true,
	UnsubscribeAckUnspecifiedError: true, UnsubscribeAckImplementationSpecificError: true,
	UnsubscribeAckNotAuthorized: true, UnsubscribeAckTopicFilterInvalid: true,
	UnsubscribeAckPacketIdentifierInUse: true,
}

func ParseUnsubscribeAckReason(b byte) (UnsubscribeAckReason, error) {
	r := UnsubscribeAckReason(b)
	if !unsubscribeAckReasons[r] {
		return 0, ErrInvalidUnsubscribeAckReason
	}
	return r, nil
}

// DisconnectReason is the reason code carried by a DISCONNECT packet, in
// either direction (client-to-server or server-to-client).
type DisconnectReason byte

const (
	DisconnectNormalDisconnection                 DisconnectReason = 0x00
	DisconnectWithWillMessage                     DisconnectReason = 0x04
	DisconnectUnspecifiedError                    DisconnectReason = 0x80
	DisconnectMalformedPacket                     DisconnectReason = 0x81
	DisconnectProtocolError                       DisconnectReason = 0x82
	DisconnectImplementationSpecificError         DisconnectReason = 0x83
	DisconnectNotAuthorized                       DisconnectReason = 0x87
	DisconnectServerBusy                          DisconnectReason = 0x89
	DisconnectServerShuttingDown                  DisconnectReason = 0x8B
	DisconnectKeepAliveTimeout                    DisconnectReason = 0x8D
	DisconnectSessionTakenOver                    DisconnectReason = 0x8E
	DisconnectTopicFilterInvalid                  DisconnectReason = 0x8F
	DisconnectTopicNameInvalid                    DisconnectReason = 0x90
	DisconnectReceiveMaximumExceeded              DisconnectReason = 0x93
	DisconnectTopicAliasInvalid                   DisconnectReason = 0x94
	DisconnectPacketTooLarge                      DisconnectReason = 0x95
	DisconnectMessageRateTooHigh                  DisconnectReason = 0x96
	DisconnectQuotaExceeded                       DisconnectReason = 0x97
	DisconnectAdministrativeAction                DisconnectReason = 0x98
	DisconnectPayloadFormatInvalid                DisconnectReason = 0x99
	DisconnectRetainNotSupported                  DisconnectReason = 0x9A
	DisconnectQoSNotSupported                     DisconnectReason = 0x9B
	DisconnectUseAnotherServer                    DisconnectReason = 0x9C
	DisconnectServerMoved                         DisconnectReason = 0x9D
	DisconnectSharedSubscriptionsNotSupported     DisconnectReason = 0x9E
	DisconnectConnectionRateExceeded              DisconnectReason = 0x9F
	DisconnectMaximumConnectTime                  DisconnectReason = 0xA0
	DisconnectSubscriptionIdentifiersNotSupported DisconnectReason = 0xA1
	DisconnectWildcardSubscriptionsNotSupported   DisconnectReason = 0xA2
)

var disconnectReasons = map[DisconnectReason]bool{
	DisconnectNormalDisconnection: true, DisconnectWithWillMessage: true,
	DisconnectUnspecifiedError: true, DisconnectMalformedPacket: true,
	DisconnectProtocolError: true, DisconnectImplementationSpecificError: true,
	DisconnectNotAuthorized: true, DisconnectServerBusy: true,
	DisconnectServerShuttingDown: true, DisconnectKeepAliveTimeout: true,
	DisconnectSessionTakenOver: true, DisconnectTopicFilterInvalid: true,
	DisconnectTopicNameInvalid: true, DisconnectReceiveMaximumExceeded: true,
	DisconnectTopicAliasInvalid: true, DisconnectPacketTooLarge: true,
	DisconnectMessageRateTooHigh: true, DisconnectQuotaExceeded: true,
	DisconnectAdministrativeAction: true, DisconnectPayloadFormatInvalid: true,
	DisconnectRetainNotSupported: true, DisconnectQoSNotSupported: true,
	DisconnectUseAnotherServer: true, DisconnectServerMoved: true,
	DisconnectSharedSubscriptionsNotSupported: true, DisconnectConnectionRateExceeded: true,
	DisconnectMaximumConnectTime: true, DisconnectSubscriptionIdentifiersNotSupported: true,
	DisconnectWildcardSubscriptionsNotSupported: true,
}

func ParseDisconnectReason(b byte) (DisconnectReason, error) {
	r := DisconnectReason(b)
	if !disconnectReasons[r] {
		return 0, ErrInvalidDisconnectReason
	}
	return r, nil
}

// AuthenticateReason is the reason code carried by an AUTH packet.
type AuthenticateReason byte

const (
	AuthenticateSuccess              AuthenticateReason = 0x00
	AuthenticateContinueAuthentication AuthenticateReason = 0x18
	AuthenticateReAuthenticate        AuthenticateReason = 0x19
)

var authenticateReasons = map[AuthenticateReason]bool{
	AuthenticateSuccess: true, AuthenticateContinueAuthentication: true,
	AuthenticateReAuthenticate: true,
}

func ParseAuthenticateReason(b byte) (AuthenticateReason, error) {
	r := AuthenticateReason(b)
	if !authenticateReasons[r] {
		return 0, ErrInvalidAuthenticateReason
	}
	return r, nil
}
