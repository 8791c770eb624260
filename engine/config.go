package engine

import (
	"fmt"
	"time"

	"github.com/npillmayer/schuko"
)

// Configuration keys read by OptionsFromConfig.
const (
	KeyMaxCacheSize = "puller.maxcachesize" // bytes
	KeyAllowLocalFS = "puller.allowlocalfs" // bool
	KeyTimeout      = "puller.timeout"      // duration, e.g. "10s"
	KeySystemFonts  = "fonts.system"        // bool
)

// OptionsFromConfig creates options from an application configuration.
// Keys which are not set leave the defaults in place.
func OptionsFromConfig(conf schuko.Configuration) ([]Option, error) {
	if conf == nil {
		return nil, nil
	}
	var opts []Option
	if conf.IsSet(KeyMaxCacheSize) {
		opts = append(opts, MaxCacheSize(int64(conf.GetInt(KeyMaxCacheSize))))
	}
	if conf.IsSet(KeyAllowLocalFS) {
		opts = append(opts, AllowLocalFS(conf.GetBool(KeyAllowLocalFS)))
	}
	if conf.IsSet(KeyTimeout) {
		d, err := time.ParseDuration(conf.GetString(KeyTimeout))
		if err != nil {
			return nil, fmt.Errorf("configuration %s: %w", KeyTimeout, err)
		}
		opts = append(opts, Timeout(d))
	}
	if conf.IsSet(KeySystemFonts) {
		opts = append(opts, SystemFonts(conf.GetBool(KeySystemFonts)))
	}
	tracer().Debugf("%d options from configuration", len(opts))
	return opts, nil
}
