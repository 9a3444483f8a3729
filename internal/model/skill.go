// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// SkillCategories is the closed set of categories a skill may belong to.
var SkillCategories = []string{
	"Programming Languages",
	"Frameworks & Libraries",
	"Databases",
	"DevOps & Tools",
	"Cloud Services",
	"Design & UI/UX",
	"Soft Skills",
	"Other",
}

// IsValidSkillCategory reports whether category is one of SkillCategories.
func IsValidSkillCategory(category string) bool {
	for _, c := range SkillCategories {
		if c == category {
			return true
		}
	}
	return false
}
