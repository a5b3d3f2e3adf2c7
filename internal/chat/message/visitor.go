package message

// Visitor is the only sanctioned way to read a payload. Implementations must
// handle every kind, so adding a kind breaks every consumer at compile time.
type Visitor[T any] interface {
	VisitText(m Message) T
	VisitImage(m Message, p ImagePayload) T
	VisitOffer(m Message, p OfferPayload) T
	VisitMilestone(m Message, p MilestonePayload) T
	VisitSystemEvent(m Message, p SystemEventPayload) T
	VisitMissing(m Message, p MissingPayload) T
}

// Visit dispatches on the payload after checking it agrees with m.Kind.
func Visit[T any](m Message, v Visitor[T]) T {
	if m.Kind == KindText {
		return v.VisitText(m)
	}
	if m.Payload == nil {
		return v.VisitMissing(m, MissingPayload{Declared: m.Kind, Reason: "payload missing"})
	}
	if m.Payload.Kind() != m.Kind {
		return v.VisitMissing(m, MissingPayload{Declared: m.Kind, Reason: "payload does not match kind"})
	}

	switch p := m.Payload.(type) {
	case ImagePayload:
		return v.VisitImage(m, p)
	case OfferPayload:
		return v.VisitOffer(m, p)
	case MilestonePayload:
		return v.VisitMilestone(m, p)
	case SystemEventPayload:
		return v.VisitSystemEvent(m, p)
	case MissingPayload:
		return v.VisitMissing(m, p)
	default:
		return v.VisitMissing(m, MissingPayload{Declared: m.Kind, Reason: "unsupported payload"})
	}
}
