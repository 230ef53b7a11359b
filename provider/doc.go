// Package provider hands out loggers by category, each backed by one
// os_log destination.
//
// A Provider is an explicit registry: construct it at startup, pass it
// to whatever needs loggers, and Close it at shutdown. The first request
// for a category creates the native log object; later requests, including
// ones that differ only in letter case, reuse it. Concurrent first
// requests for the same category still create exactly one native object.
//
//	p, err := provider.Open(provider.WithSubsystem("com.example.app"))
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	log, err := p.CreateLogger("network")
//	if err != nil {
//	    return err
//	}
//	log.Info("connected", logger.String("host", host))
//
// Close empties the cache but does not release native log objects; the
// unified logging system keeps them for the life of the process.
package provider
