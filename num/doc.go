/*
Package num provides the small numeric and color helpers animations are built from:
random integers, averages, clamping, linear interpolation and conversions between
hex color codes and CSS rgb()/rgba() functions.

All functions are pure. Boundary behavior is left unguarded on purpose: the
average of an empty list is NaN, and malformed color strings are reported as
parse errors.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package num
