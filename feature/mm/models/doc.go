// Package models defines the Miniature Market cache record.
package models
