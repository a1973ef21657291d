package domain

import "strings"

// Canonical learner-profile attribute names.
const (
	AttrInquirer      = "inquirer"
	AttrKnowledgeable = "knowledgeable"
	AttrThinker       = "thinker"
	AttrCommunicator  = "communicator"
	AttrPrincipled    = "principled"
	AttrOpenMinded    = "open-minded"
	AttrCaring        = "caring"
	AttrRiskTaker     = "risk-taker"
	AttrBalanced      = "balanced"
	AttrReflective    = "reflective"
)

// CanonicalAttributes lists the ten learner-profile attributes in report order.
var CanonicalAttributes = []string{
	AttrInquirer,
	AttrKnowledgeable,
	AttrThinker,
	AttrCommunicator,
	AttrPrincipled,
	AttrOpenMinded,
	AttrCaring,
	AttrRiskTaker,
	AttrBalanced,
	AttrReflective,
}

// LearnerProfile holds the weak and strong attribute lists derived from a report.
// Both lists are ordered and case-insensitively de-duplicated.
type LearnerProfile struct {
	WeakAttributes   []string `json:"weakAttributes"`
	StrongAttributes []string `json:"strongAttributes"`
}

// TopWeak returns at most n weak attributes in profile order.
func (p LearnerProfile) TopWeak(n int) []string {
	return head(p.WeakAttributes, n)
}

// TopStrong returns at most n strong attributes in profile order.
func (p LearnerProfile) TopStrong(n int) []string {
	return head(p.StrongAttributes, n)
}

func head(list []string, n int) []string {
	if n > len(list) {
		n = len(list)
	}
	if n <= 0 {
		return nil
	}
	return list[:n]
}

// NormalizeAttribute lower-cases and trims an attribute name and maps
// spacing/hyphen variants of the canonical names ("Risk taker", "risktaker")
// onto their canonical form. Unknown names are returned lower-cased.
func NormalizeAttribute(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if canon, ok := CanonicalAttribute(lower); ok {
		return canon
	}
	return lower
}

// CanonicalAttribute resolves name to one of the ten canonical attributes,
// ignoring case, hyphens and spaces.
func CanonicalAttribute(name string) (string, bool) {
	key := squash(name)
	for _, attr := range CanonicalAttributes {
		if squash(attr) == key {
			return attr, true
		}
	}
	return "", false
}

func squash(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// SquashAttribute returns the hyphen- and space-insensitive key for an attribute.
func SquashAttribute(s string) string {
	return squash(s)
}
