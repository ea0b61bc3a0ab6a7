package asnzs

import (
	"sort"
	"strings"
)

// Region is a wind region of AS/NZS 1170.2 Figure 3.1.
// Sub-regions A0 to A5 share one set of regional speeds and are reported as A.
type Region string

const (
	RegionA  Region = "A"
	RegionW  Region = "W"
	RegionB1 Region = "B1"
	RegionB2 Region = "B2"
	RegionC  Region = "C"
	RegionD  Region = "D"
)

// Regions lists every region in table order
var Regions = []Region{RegionA, RegionW, RegionB1, RegionB2, RegionC, RegionD}

// ParseRegion accepts a region label in any case. A0–A5 map to A.
func ParseRegion(s string) (Region, error) {
	key := upper(s)
	if len(key) == 2 && key[0] == 'A' && key[1] >= '0' && key[1] <= '5' {
		return RegionA, nil
	}
	for _, r := range Regions {
		if string(r) == key {
			return r, nil
		}
	}
	return "", &LookupError{Table: "wind region", Key: s}
}

// IsCoastal reports whether regional speeds in r vary with distance from
// the coastline (Table 3.1(B))
func (r Region) IsCoastal() bool {
	return r == RegionC || r == RegionD
}

// ClimateChangeMultiplier returns M_c (Clause 3.4)
func (r Region) ClimateChangeMultiplier() float64 {
	if r == RegionC || r == RegionD {
		return 1.05
	}
	return 1.0
}

// locations maps a town to its wind region
var locations = map[string]Region{
	"adelaide":       RegionA,
	"alice springs":  RegionA,
	"auckland":       RegionA,
	"ballarat":       RegionA,
	"bendigo":        RegionA,
	"canberra":       RegionA,
	"christchurch":   RegionA,
	"geelong":        RegionA,
	"hobart":         RegionA,
	"launceston":     RegionA,
	"melbourne":      RegionA,
	"newcastle":      RegionA,
	"perth":          RegionA,
	"sydney":         RegionA,
	"wollongong":     RegionA,
	"wellington":     RegionW,
	"brisbane":       RegionB1,
	"gold coast":     RegionB1,
	"sunshine coast": RegionB1,
	"bundaberg":      RegionB2,
	"gladstone":      RegionB2,
	"geraldton":      RegionB2,
	"broome":         RegionC,
	"cairns":         RegionC,
	"darwin":         RegionC,
	"mackay":         RegionC,
	"rockhampton":    RegionC,
	"townsville":     RegionC,
	"carnarvon":      RegionD,
	"exmouth":        RegionD,
	"karratha":       RegionD,
	"onslow":         RegionD,
	"port hedland":   RegionD,
}

// RegionForLocation resolves a town name to its wind region
func RegionForLocation(name string) (Region, error) {
	key := strings.ToLower(strings.Join(strings.Fields(name), " "))
	if r, ok := locations[key]; ok {
		return r, nil
	}
	return "", &LookupError{Table: "location", Key: name}
}

// Location pairs a town with its wind region
type Location struct {
	Name   string
	Region Region
}

// Locations returns all known towns sorted by name
func Locations() []Location {
	out := make([]Location, 0, len(locations))
	for name, r := range locations {
		out = append(out, Location{Name: titleCase(name), Region: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
