package locale

import (
	"fmt"

	jj "github.com/cloudfoundry/jibber_jabber"
)

// detectIETF is replaced in tests.
var detectIETF = jj.DetectIETF

// FromEnvironment detects the user's locale from the environment (LC_ALL,
// LANG, etc., or the platform's equivalent) and resolves it to a rule set.
//
// Detection failures and unsupported user locales are reported as errors.
// Deciding on a fallback is up to the caller, e.g.:
//
//	rules, err := locale.FromEnvironment()
//	if err != nil {
//	    rules = locale.Root()
//	}
func FromEnvironment() (*RuleSet, error) {
	userLocale, err := detectIETF()
	if err != nil {
		tracer().Errorf("cannot detect user locale: %v", err)
		return nil, fmt.Errorf("locale detection: %w", err)
	}
	tracer().Infof("detected user locale %v", userLocale)
	return Resolve(userLocale)
}
