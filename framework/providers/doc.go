// Package providers holds the framework service providers: configuration,
// logging, metrics and routing. Register them in that order, since each reads
// what the previous ones bound.
package providers
