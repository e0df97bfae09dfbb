// Package partner contains the DeliveryPartner aggregate: availability,
// last reported position, and the optional link to a user account.
package partner
