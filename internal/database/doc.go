// Package database provides PostgreSQL connectivity and the persistent
// FeedbackRepository.
//
// Uses pgx for connection pooling. Migrations run at startup under an
// advisory lock so multiple instances can boot concurrently.
package database
