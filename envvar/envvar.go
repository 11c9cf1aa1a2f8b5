// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package envvar provides functions to read environment variables for
// configuration.
package envvar

import (
	"os"

	"github.com/yourbase/ini/ini"
)

// Get returns the value of the given environment variable. If it is empty or
// unset, it returns the default value.
func Get(key string, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v
}

// Bool returns the value of a boolean environment variable. The value is
// interpreted like an INI boolean option (see ini.ParseBool). If it is unset
// or not a recognized literal, Bool returns defaultValue.
func Bool(key string, defaultValue bool) bool {
	b, err := ini.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}
