// Package utils provides loose conversions used by the dispute readers to turn
// decoded field values into strings and decimal amounts.
package utils
