// Package poker classifies five-card poker hands and scores them so that
// hands from different players can be ranked.
//
// # Core Types
//
// Card: a playing card with rank (Two through Ace) and suit (Club through
// Spade), built and validated by NewCard.
//
// Hand: a sequence of cards. Only hands of exactly five cards are
// classified; other lengths evaluate to Nothing with score 0.
//
// Result: the category of a hand, the card that breaks ties inside that
// category, the highest card and the composite score.
//
// Standing: a player's name paired with the evaluated hand.
//
// # Hand Evaluation
//
// Nine predicates (IsRoyalFlush down to IsOnePair) can each be called on
// their own. Evaluate runs them strongest first and scores the first match
// as base * tieBreak.rank * tieBreak.suit, plus highCard.rank*10 +
// highCard.suit. The suit factor is arbitrary but stable, so the order it
// produces is kept as is.
//
// # Ranking
//
// RankStandings sorts standings by descending score, keeping input order for
// equal scores. Winners returns the standings that share the top score.
//
// Every function in the package is pure and safe for concurrent use.
package poker
