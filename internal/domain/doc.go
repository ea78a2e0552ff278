// Package domain contains the core entities, value objects, and domain errors
// of the catalog. It is independent of any storage or delivery mechanism.
//
// Measured quantities live in the uncertain subpackage; the element and
// isotope tables that consume them live in internal/periodic.
package domain
