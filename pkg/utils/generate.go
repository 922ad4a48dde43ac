package utils

import (
	"math/rand"
)

const (
	confirmationCodeMin = 100000
	confirmationCodeMax = 999999
)

// GenerateConfirmationCode draws a 6-digit code uniformly from
// [100000, 999999]. math/rand on purpose: the code is a short-lived
// signup credential delivered out of band, and switching to a
// cryptographic source would be an observable behavior change that the
// team has not decided on. Known limitation: the code space is small,
// codes never expire and there is no attempt limit.
func GenerateConfirmationCode() int {
	return confirmationCodeMin + rand.Intn(confirmationCodeMax-confirmationCodeMin+1)
}
