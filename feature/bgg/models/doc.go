// Package models defines the BoardGameGeek cache record.
package models
