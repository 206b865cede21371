package config

import (
	"fmt"

	"github.com/ncobase/svcresp/ecode"
	"github.com/spf13/viper"
)

// getStringOrDefault returns string from config or default value
func getStringOrDefault(v *viper.Viper, key string, defaultValue string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return defaultValue
}

// getBoolOrDefault returns bool from config or default value
func getBoolOrDefault(v *viper.Viper, key string, defaultValue bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return defaultValue
}

// getTableOrDefault returns a code table from config or default value
func getTableOrDefault(v *viper.Viper, key string, defaultValue ecode.Table) (ecode.Table, error) {
	if !v.IsSet(key) {
		return defaultValue, nil
	}
	t, err := ecode.ParseTable(v.GetStringMapString(key))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return t, nil
}
