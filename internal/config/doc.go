// Package config provides environment-based configuration.
//
// DATABASE_URL and REDIS_URL are optional: without a database the engine
// runs on the in-memory repository, without Redis the summary cache is
// disabled and every summary is recomputed.
package config
