package cmd

import (
	"github.com/PolarWolf314/gpglog/internal/logging"
	"github.com/spf13/pflag"
)

// severityValue lets --level take either a name or a number.
type severityValue struct {
	sev logging.Severity
}

var _ pflag.Value = (*severityValue)(nil)

func (v *severityValue) String() string {
	return v.sev.String()
}

func (v *severityValue) Set(s string) error {
	sev, err := logging.ParseSeverity(s)
	if err != nil {
		return err
	}
	v.sev = sev
	return nil
}

func (v *severityValue) Type() string {
	return "severity"
}
