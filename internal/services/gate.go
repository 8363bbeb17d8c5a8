package services

// HRGate compares against one shared passphrase. It is a convenience gate,
// not an access control boundary.
type HRGate struct {
	passphrase string
}

func NewHRGate(passphrase string) HRGate {
	return HRGate{passphrase: passphrase}
}

func (g HRGate) Check(secret string) bool {
	return g.passphrase != "" && secret == g.passphrase
}
