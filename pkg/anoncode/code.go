// Package anoncode derives anonymized display codes for event applicants.
package anoncode

// AnonymousCode is the display code shared by all anonymous payers.
const AnonymousCode = "ANONYM"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Code returns a 6-8 character display code for a payer on a given event.
// The same identity and event always map to the same code. Codes are for
// display anonymity only, not access control.
func Code(identity, eventID string) string {
	seed := hash32(identity + "-" + eventID)
	if seed < 0 {
		seed = -seed
	}

	rng := lcg{state: seed}
	length := 6 + int(rng.next()%3)

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[rng.next()%int32(len(alphabet))]
	}
	return string(buf)
}

func hash32(s string) int32 {
	var h int32
	for _, c := range s {
		h = h*31 + int32(c)
	}
	return h
}

type lcg struct {
	state int32
}

func (g *lcg) next() int32 {
	g.state = (g.state*1103515245 + 12345) & 0x7FFFFFFF
	return g.state
}
