// Package models defines the CoolStuffInc cache record.
package models
