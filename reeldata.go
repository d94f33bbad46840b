// Package reeldata extracts structured movie records from a paginated
// catalog listing. It discovers the full set of listing pages from a
// free-text count header, follows every listing entry to its title page,
// and normalizes a fixed schema of independently-optional fields
// (currency converted to USD, dates parsed, labels stripped).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/) or their concern
// (imdb/, crawl/).
package reeldata
