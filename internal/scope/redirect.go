package scope

// #region imports
import (
	"github.com/danielpatrickdp/therapy-assistant/internal/randsrc"
)

// #endregion imports

// #region messages

var redirections = [...]string{
	"I'm here specifically to help with emotional support and mental wellbeing. Let's focus on how you're feeling. What emotions are you experiencing right now?",
	"I specialize in emotional support and counseling. Instead of that topic, would you like to talk about how you're feeling today?",
	"My purpose is to provide emotional support and therapeutic guidance. Let's talk about your feelings and emotions. How can I help you feel better?",
	"I focus on emotional wellbeing and mental health support. What's on your mind emotionally? I'm here to listen and help you process your feelings.",
	"I'm designed to help with emotional support and counseling. Let's redirect to your emotional wellbeing - how are you feeling right now?",
	"I only provide emotional support and mental health guidance. Tell me about your feelings - what's weighing on your heart or mind today?",
}

// Redirections returns a copy of the deflection pool.
func Redirections() []string {
	return append([]string(nil), redirections[:]...)
}

// #endregion messages

// #region redirector

// Redirector picks deflection messages for out-of-scope input.
type Redirector struct {
	rng randsrc.Source
}

// NewRedirector creates a Redirector. rng may be nil, in which case the
// shared randsrc source is used.
func NewRedirector(rng randsrc.Source) *Redirector {
	return &Redirector{rng: randsrc.OrDefault(rng)}
}

// Redirect returns one message from the fixed pool, chosen uniformly.
func (r *Redirector) Redirect() string {
	return randsrc.Pick(r.rng, redirections[:])
}

// #endregion redirector
