// Package tradetools normalizes raw brokerage execution reports into the
// "generic import" record stream consumed by trade-journaling platforms.
//
// The core functionalities include:
//   - Broker Adapters: Extracting structured executions from heterogeneous,
//     loosely formatted broker sources (E*Trade Web Alerts free text,
//     Power E*Trade CSV exports), silently skipping anything that is not a
//     valid execution.
//   - Side Normalization: Unifying the inconsistent buy/sell/short/cover
//     vocabulary of brokers behind one canonical four-value taxonomy, with
//     an explicit two-way projection for platforms that only distinguish
//     buys from sells.
//   - Fee Computation: Regulatory transaction fees (FINRA TAF and SEC fee)
//     computed with exact fixed-point arithmetic and the fee schedule's
//     contractual ceiling rounding.
//   - Aggregation: Merging partial fills that share an identity key, or
//     disambiguating distinct executions that collide on a timestamp.
//   - Formatting: Rendering the final ordered field set as a stable,
//     re-parseable document, both as a text block and as a downloadable
//     data-URI encoding.
//
// This package serves as the foundational logic for the `tt` command-line
// tool; each conversion is a pure function of its input text plus the
// selected platform profile and broker adapter.
package tradetools
