package packet

import "github.com/mqtt5x/codec/wire"

// legalXProperties enumerates, per packet kind, the property identifiers
// this decoder accepts into that kind's property bag. wire.DecodeProperties
// already rejects an identifier outside the global 27-entry table; these
// sets enforce the narrower, kind-specific restriction from spec.md §3.3:
// a property that is globally valid but illegal for the containing packet
// kind is silently dropped during decode rather than stored.
var (
	legalConnectProperties = propertySet(
		wire.PropSessionExpiryInterval,
		wire.PropAuthenticationMethod,
		wire.PropAuthenticationData,
		wire.PropRequestProblemInformation,
		wire.PropRequestResponseInformation,
		wire.PropReceiveMaximum,
		wire.PropTopicAliasMaximum,
		wire.PropMaximumPacketSize,
		wire.PropUserProperty,
	)

	legalWillProperties = propertySet(
		wire.PropPayloadFormatIndicator,
		wire.PropMessageExpiryInterval,
		wire.PropContentType,
		wire.PropResponseTopic,
		wire.PropCorrelationData,
		wire.PropWillDelayInterval,
		wire.PropUserProperty,
	)

	legalConnectAckProperties = propertySet(
		wire.PropSessionExpiryInterval,
		wire.PropAssignedClientIdentifier,
		wire.PropServerKeepAlive,
		wire.PropAuthenticationMethod,
		wire.PropAuthenticationData,
		wire.PropResponseInformation,
		wire.PropServerReference,
		wire.PropReasonString,
		wire.PropReceiveMaximum,
		wire.PropTopicAliasMaximum,
		wire.PropMaximumQoS,
		wire.PropRetainAvailable,
		wire.PropUserProperty,
		wire.PropMaximumPacketSize,
		wire.PropWildcardSubscriptionAvailable,
		wire.PropSubscriptionIdentifierAvailable,
		wire.PropSharedSubscriptionAvailable,
	)

	legalPublishProperties = propertySet(
		wire.PropPayloadFormatIndicator,
		wire.PropMessageExpiryInterval,
		wire.PropContentType,
		wire.PropResponseTopic,
		wire.PropCorrelationData,
		wire.PropSubscriptionIdentifier,
		wire.PropTopicAlias,
		wire.PropUserProperty,
	)

	// legalAckReasonProperties covers PubAck/PubRec/PubRel/PubComp, SubAck,
	// and UnsubAck: every kind spec.md §4.3 restricts to ReasonString and
	// UserProperty.
	legalAckReasonProperties = propertySet(
		wire.PropReasonString,
		wire.PropUserProperty,
	)

	legalSubscribeProperties = propertySet(
		wire.PropSubscriptionIdentifier,
		wire.PropUserProperty,
	)

	legalUnsubscribeProperties = propertySet(
		wire.PropUserProperty,
	)

	legalDisconnectProperties = propertySet(
		wire.PropSessionExpiryInterval,
		wire.PropReasonString,
		wire.PropUserProperty,
		wire.PropServerReference,
	)

	legalAuthenticateProperties = propertySet(
		wire.PropAuthenticationMethod,
		wire.PropAuthenticationData,
		wire.PropReasonString,
		wire.PropUserProperty,
	)
)

func propertySet(ids ...wire.PropertyID) map[wire.PropertyID]bool {
	set := make(map[wire.PropertyID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// acceptLegal returns a wire.DecodeProperties acceptor that appends each
// decoded property to *dst, dropping any whose identifier is not in legal.
// A repeated singleton property replaces the earlier entry in place (last
// writer wins); UserProperty entries are all kept, in wire order.
func acceptLegal(dst *[]wire.Property, legal map[wire.PropertyID]bool) func(wire.Property) {
	return func(p wire.Property) {
		if !legal[p.ID] {
			return
		}
		if p.ID != wire.PropUserProperty {
			for i := range *dst {
				if (*dst)[i].ID == p.ID {
					(*dst)[i] = p
					return
				}
			}
		}
		*dst = append(*dst, p)
	}
}

func publishPropertyAcceptor(pkt *Publish) func(wire.Property) {
	return acceptLegal(&pkt.Properties, legalPublishProperties)
}
