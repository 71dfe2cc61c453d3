// Package etfwatch implements the core of a personal ETF watchlist dashboard:
// user-curated watchlists (one per account) enriched with live quotes from two
// market data providers, a trending-securities ranking, and a free-text symbol
// resolver.
//
// The package is provider-agnostic: the foreign (US) and domestic (KR) data
// sources are small interfaces implemented by the yahoo and krx sub-packages.
// All pipelines degrade per item: a failed fetch becomes a typed FetchError,
// never a missing row and never a failure of the whole view.
package etfwatch
