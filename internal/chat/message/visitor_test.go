package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type kindNamer struct{}

func (kindNamer) VisitText(Message) string { return "text" }
func (kindNamer) VisitImage(Message, ImagePayload) string { return "image" }
func (kindNamer) VisitOffer(Message, OfferPayload) string { return "offer" }
func (kindNamer) VisitMilestone(Message, MilestonePayload) string { return "milestone" }
func (kindNamer) VisitSystemEvent(Message, SystemEventPayload) string { return "system_event" }
func (kindNamer) VisitMissing(_ Message, p MissingPayload) string { return "missing:" + string(p.Declared) }

func TestVisit(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{"text", NewText("c", "u", "hi"), "text"},
		{"image", Message{Kind: KindImage, Payload: ImagePayload{}}, "image"},
		{"offer", Message{Kind: KindOffer, Payload: OfferPayload{}}, "offer"},
		{"milestone", Message{Kind: KindMilestone, Payload: MilestonePayload{}}, "milestone"},
		{"system", Message{Kind: KindSystemEvent, Payload: SystemEventPayload{}}, "system_event"},
		{"nil payload", Message{Kind: KindOffer}, "missing:offer"},
		{"mismatched payload", Message{Kind: KindOffer, Payload: ImagePayload{}}, "missing:offer"},
		{"placeholder", Message{Kind: KindMilestone, Payload: MissingPayload{Declared: KindMilestone}}, "missing:milestone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Visit[string](tt.msg, kindNamer{}))
		})
	}
}
