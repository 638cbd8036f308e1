// Package params resolves collection overrides for a hashing run.
//
// Overrides come from two places, applied in order on top of chiphash.yaml:
//   - --collection-file: .env style files, later files override earlier ones
//   - --set: key=value pairs, highest priority
//
// Recognized keys (case-insensitive): format, collection_name,
// collection_description. Any other key is rejected with
// chiphash.ErrInvalidConfig.
//
// Override files are parsed with godotenv.Parse and never touch the process
// environment.
package params
