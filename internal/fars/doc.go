// Package fars loads and summarizes FARS (Fatality Analysis Reporting
// System) yearly accident files.
//
// # Data Source
//
// FARS is the NHTSA census of fatal motor vehicle traffic crashes in the
// US, published yearly at https://www.nhtsa.gov/research-data/fatality-analysis-reporting-system-fars.
// Each year ships as a bzip2-compressed CSV named accident_<year>.csv.bz2
// with one row per accident and several dozen columns; this package cares
// about four of them:
//
//	MONTH     month of the crash, 1 through 12
//	STATE     FIPS state code, e.g. 1 = Alabama, 48 = Texas
//	LONGITUD  longitude in decimal degrees
//	LATITUDE  latitude in decimal degrees
//
// # Sentinel Coordinates
//
// Crashes with an unrecorded location carry sentinel coordinates instead
// of blanks: LONGITUD values above 900 (999.9999 and friends) and
// LATITUDE values above 90 (99.9999 and friends). These are valid
// floats that would wreck a bounding box, so [SanitizeCoords] drops them
// before any axis-range computation or plotting.
//
// # Batch Isolation
//
// Loading a batch of years never aborts on a single bad year. Each slot of
// [Loader.ReadYears] is a [YearResult] holding either a (MONTH, year)
// table or the error that prevented it; failed years are logged as
// warnings and skipped by [Loader.SummarizeYears].
package fars
