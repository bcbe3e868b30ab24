/*
The untd command converts a Unix timestamp into a date and time. The result
is printed in a chosen timezone and format and is copied to the system
clipboard ready for pasting.

It is most useful when working with logs, databases and APIs which record
times as seconds since the epoch. Paste in the timestamp, read off the date.

The default timezone is Japan Standard Time and the default format shows
just the date; both can be changed and there is a collection of format
keywords for common presentations, including Japanese date formats.
*/
package main
