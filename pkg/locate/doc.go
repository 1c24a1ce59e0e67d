// Package locate implements types.Locator, the "where does this program
// live" facility.
//
// Two backends are provided:
//
//   - CommandLocator runs a platform utility (`where` on Windows,
//     `which -a` elsewhere, or any configured command line) and treats every
//     non-empty line of its standard output as one candidate.
//   - PathLocator scans the directories of $PATH itself, for systems where
//     no such utility is installed.
//
// Neither backend validates the candidates: whatever the platform reports is
// passed through verbatim, in order.
package locate
