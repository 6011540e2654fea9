// Package storage declares persistence interfaces for web-owned cache data.
//
// The web cache is a derived read optimization for third-party embeds and
// never holds launchpad state of record.
package storage
