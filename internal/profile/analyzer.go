package profile

import (
	"strings"

	"github.com/alexanderramin/sprout/internal/domain"
)

// Analyze derives the weak and strong attribute lists from a report.
//
// Each learner-profile line is a strength only when its evidence carries a
// strength keyword and no developing keyword; everything else, including
// missing evidence, is weak. The summary lists are then scanned for the
// canonical attribute names. An attribute keeps its first classification,
// so no attribute is ever both weak and strong. A nil report yields an
// empty profile.
func Analyze(report *domain.Report) domain.LearnerProfile {
	var c classifier
	if report == nil {
		return c.profile()
	}

	for _, pa := range report.LearnerProfileAttributes {
		name := domain.NormalizeAttribute(pa.Attribute)
		if name == "" {
			continue
		}
		if IsStrengthEvidence(pa.Evidence) {
			c.addStrong(name)
		} else {
			c.addWeak(name)
		}
	}

	if report.Summary != nil {
		for _, text := range report.Summary.AreasNeedingAttention {
			for _, attr := range MentionedAttributes(text) {
				c.addWeak(attr)
			}
		}
		for _, text := range report.Summary.KeyStrengths {
			for _, attr := range MentionedAttributes(text) {
				c.addStrong(attr)
			}
		}
	}

	return c.profile()
}

// IsStrengthEvidence applies the keyword rule to one evidence string.
func IsStrengthEvidence(evidence string) bool {
	ev := strings.ToLower(evidence)
	return containsAny(ev, StrengthKeywords) && !containsAny(ev, DevelopingKeywords)
}

// MentionedAttributes returns the canonical attributes named in free text,
// ignoring case, hyphens and spaces, in canonical order.
func MentionedAttributes(text string) []string {
	key := domain.SquashAttribute(text)
	if key == "" {
		return nil
	}
	var found []string
	for _, attr := range domain.CanonicalAttributes {
		if strings.Contains(key, domain.SquashAttribute(attr)) {
			found = append(found, attr)
		}
	}
	return found
}

type classifier struct {
	weak   []string
	strong []string
	seen   map[string]bool
}

func (c *classifier) add(list *[]string, name string) {
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	key := strings.ToLower(name)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	*list = append(*list, name)
}

func (c *classifier) addWeak(name string)   { c.add(&c.weak, name) }
func (c *classifier) addStrong(name string) { c.add(&c.strong, name) }

func (c *classifier) profile() domain.LearnerProfile {
	weak, strong := c.weak, c.strong
	if weak == nil {
		weak = []string{}
	}
	if strong == nil {
		strong = []string{}
	}
	return domain.LearnerProfile{WeakAttributes: weak, StrongAttributes: strong}
}
