// Package discord defines the JSON shapes of Discord's [interaction] requests
// and responses, and authenticates inbound [interaction webhooks].
//
// [interaction]: https://discord.com/developers/docs/interactions/receiving-and-responding
// [interaction webhooks]: https://discord.com/developers/docs/interactions/overview#setting-up-an-endpoint
package discord
