/*
The timeadjust package parses relative time adjustments such as "-30s" or
"2d" and applies them to times. An adjustment is a whole number of one of a
small set of units, from seconds up to weeks, with an optional leading sign.
*/
package timeadjust
