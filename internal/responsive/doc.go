// Package responsive produces src, srcSet and sizes attributes for
// responsive images served by the transformation service.
//
// # Strategies
//
// Attributes picks the first matching strategy from an ordered table:
//
//   - non-responsive: Responsive is explicitly false. A single URL, empty srcSet.
//   - sizes: a sizes hint is given. Device and image breakpoints (plus the
//     width and its double, when given) are filtered by the smallest vw
//     value found in the hint.
//   - width: a width is given. Device and image breakpoints plus the width
//     and its double, unfiltered; src uses the width itself.
//   - default: device breakpoints only, sizes "100vw".
//
// Every width list is deduplicated and sorted ascending before use. Each
// srcSet entry is built by the transform package, so its validation and
// resolution errors abort the whole call.
package responsive
