// Package config discovers and parses the bastion daemon's configuration.
//
// certview reuses the daemon's own config file rather than keeping a second
// copy of the API address: the operator points both the daemon and the
// console at ~/.config/bastion/config.toml. Only the fields the console
// needs are read (api_bind, audit_log); everything else is ignored. A
// missing file is not an error; the defaults match a stock local daemon.
package config
