// Package options defines the contract shared by option sections.
package options

import "github.com/spf13/pflag"

// Section is a group of related flags that validates itself.
type Section interface {
	// AddFlags adds the section's flags to fs.
	AddFlags(fs *pflag.FlagSet)

	// Validate reports every problem with the section.
	Validate() []error
}

// ValidateAll validates each section in turn and collects the errors.
func ValidateAll(sections ...Section) []error {
	var errs []error
	for _, s := range sections {
		errs = append(errs, s.Validate()...)
	}
	return errs
}
