// Package bridge implements the contract bridge data model read by the
// bidding engine and the auction driver.
//
// # Core Types
//
// Card: an immutable (suit, rank) pair with its high-card point value.
//
// Hand: the 13 cards held by one seat, with the shape and point queries
// bidding decisions are based on (HCP, shape, balanced, labeled shape).
//
// Bid and Call: a level and strain, or a pass. Calls are totally ordered
// by Bid.Rank, which decides whether a new bid is sufficient.
//
// Auction: the ordered list of calls made around the table, starting from
// the dealer.
//
// Board: the board number, from which dealer and vulnerability follow the
// standard 16-board cycle.
//
// # Notation
//
// Hands are written as four groups of rank characters from "23456789TJQKA"
// ordered spades|hearts|diamonds|clubs, for example "AKQJ|T987|6543|2".
// A void is written "-".
package bridge
