// Package config loads velem.json.
//
// Example velem.json:
//
//	{
//	  "server": { "host": "localhost", "port": 4000 },
//	  "render": { "pretty": true },
//	  "metrics": { "namespace": "velem" },
//	  "log": { "level": "debug", "format": "json" },
//	  "publish": { "dir": "dist", "s3": { "bucket": "site", "prefix": "pages/" } }
//	}
//
// Missing fields take defaults; a missing file yields New() from LoadOrDefault.
package config
