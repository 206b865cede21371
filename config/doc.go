// Package config loads svcresp configuration using Viper, with support for
// YAML, JSON and TOML files, SVCRESP_* environment variables and
// hot-reloading.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfig("./config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// With an empty path the file "config" is searched in /etc/svcresp,
// $HOME/.svcresp, the working directory and the executable's directory.
// A missing file is not an error; defaults apply.
//
// # Configuration Format
//
//	app_name: orders
//	run_mode: release
//
//	logger:
//	  level: 4          # logrus level, 5 = debug
//	  format: json      # json | text
//	  output: stderr    # stdout | stderr | file
//	  output_file: ./logs/orders.log
//	  desensitization:
//	    enabled: true
//	    sensitive_fields: [password, token]
//
//	response:
//	  pretty: true
//	  escape_html: false
//	  format: json      # json | xml | text
//	  success_codes:
//	    200: 200 OK
//	    201: 201 Created
//	  error_codes:
//	    400: 400 Bad Request
//	    500: 500 Internal
//
// Omitting success_codes or error_codes keeps the default catalogs from
// package ecode. A present table replaces the default wholesale.
//
// # Hot Reload
//
//	config.SetPath("./config.yaml")
//	err := config.Watch(func(cfg *config.Config) {
//	    factory = cfg.Response.Factory(logger.StdLogger())
//	}, func(err error) {
//	    logger.StdLogger().WithError(err).Warn("config reload failed")
//	})
//
// Watch loads the configuration if needed and returns an error when there
// is no config file to watch. A reload that fails leaves the previous
// configuration active.
package config
