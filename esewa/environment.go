package esewa

import "fmt"

// Environment selects which eSewa endpoint requests are sent to. The two
// environments differ only by hostname.
type Environment int

const (
	// Sandbox targets the eSewa RC endpoint used for testing. It is the
	// zero value, so a misconfigured Environment can never reach
	// production by accident.
	Sandbox Environment = iota
	// Production targets the live eSewa endpoint.
	Production
)

const (
	sandboxFormURL    = "https://rc-epay.esewa.com.np/api/epay/main/v2/form"
	productionFormURL = "https://epay.esewa.com.np/api/epay/main/v2/form"
)

// ParseEnvironment maps the config/CLI spelling of an environment to its
// value. Only "sandbox" and "production" are accepted.
func ParseEnvironment(s string) (Environment, error) {
	switch s {
	case "sandbox":
		return Sandbox, nil
	case "production":
		return Production, nil
	default:
		return Sandbox, fmt.Errorf("unknown environment %q (want sandbox or production)", s)
	}
}

func (e Environment) String() string {
	if e == Production {
		return "production"
	}
	return "sandbox"
}

// FormURL returns the payment form endpoint for the environment.
func (e Environment) FormURL() string {
	if e == Production {
		return productionFormURL
	}
	return sandboxFormURL
}

// MarshalText implements encoding.TextMarshaler.
func (e Environment) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}
