// Package application runs bidding practice: it seats the convention engine
// as North and the trainee as South, with silent opponents, deals boards in
// sequence and keeps a verifiable history of every finished auction.
package application
