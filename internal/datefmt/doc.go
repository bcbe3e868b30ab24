/*
The datefmt package maps format keywords to strftime patterns and renders
times according to them. A small set of keywords name common formats,
including several Japanese-language forms; anything else is treated as a
pattern and used as given. The package also provides the weekday-name
substitution which the jpwd keyword uses to show a Japanese weekday name.
*/
package datefmt
