// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bind ties a flag to a viper key. Both come from this package, so a
// failure is a programming error.
func bind(v *viper.Viper, f *pflag.Flag, key string) {
	if f == nil {
		panic(fmt.Sprintf("cli: no flag for %q", key))
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("cli: bind %q: %v", key, err))
	}
}
