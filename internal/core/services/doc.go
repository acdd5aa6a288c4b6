// Package services implements the driving ports: the fetch pass that
// streams starred repositories into the durable store, and the generate
// pass that scrapes star lists, loads the store and renders the README.
package services
