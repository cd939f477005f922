package utils

import "github.com/osse101/CookieMonster_Go/internal/domain"

// FindCookie finds the given cookie instance in a jar.
// Matching is by identity, so two cookies of the same kind are distinct.
// Returns -1 if the cookie is not in the jar.
func FindCookie(jar []*domain.Cookie, cookie *domain.Cookie) int {
	for i, c := range jar {
		if c == cookie {
			return i
		}
	}
	return -1
}

// RemoveCookie removes the given cookie instance from a jar, keeping the order
// of the remaining cookies. The jar is returned unchanged if the cookie is absent.
func RemoveCookie(jar []*domain.Cookie, cookie *domain.Cookie) []*domain.Cookie {
	idx := FindCookie(jar, cookie)
	if idx == -1 {
		return jar
	}

	copy(jar[idx:], jar[idx+1:])
	jar[len(jar)-1] = nil
	return jar[:len(jar)-1]
}
