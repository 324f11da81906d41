// Package licenselist models the SPDX license list, the registry of
// identifiers that license expressions draw from.
//
// The list is parsed from the licenses.json and exceptions.json
// payloads that ship with each release at
// https://github.com/spdx/license-list-data. Fetching those payloads
// is the caller's business; this package never touches the network.
//
//	list, err := licenselist.Parse(licensesJSON, exceptionsJSON)
//	if err != nil { ... }
//	unknown := list.UnknownLicenses(pkg.ConcludedLicense)
package licenselist
