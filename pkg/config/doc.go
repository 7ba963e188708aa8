// Package config loads configuration structs from environment variables.
//
// Store packages declare their settings as structs with `env` tags
// (connection URLs, timeouts, retry policy); Load fills them from the
// process environment, consulting a .env file once per process for local
// development. There is no file-format parsing here on purpose: deployment
// environments inject configuration through the environment, and secrets
// never touch the repository.
package config
