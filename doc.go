// Package folio implements the client-side engine of a portfolio manager:
// the authoritative in-memory holdings list as fetched from the backing
// REST API, the persisted presentation state, and every derived read-only
// projection built on top of them.
//
// The core functionalities include:
//   - View-Model: owning the holdings list, mediating every mutation
//     through the portfolio API, and reconciling the local list in place
//     after each create, update or delete.
//   - Derived Views: the filtered and sorted visible list, summary
//     statistics, allocation-versus-target breakdown, tag and risk
//     aggregates, all currency-converted into the display currency.
//   - Multi-Currency: an any-to-any conversion pivoting through USD over a
//     user-maintained rate table, with half-even display rounding.
//   - Interchange: a single CSV schema shared by import and export, so the
//     two directions round-trip and cannot drift apart.
//   - Local State: defensive loaders for every persisted concern (filters,
//     targets, rates, value history, timeline, presets) that fall back to
//     defaults instead of failing on corrupted blobs.
//
// This package serves as the foundational logic for the `pmc` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package folio
