/*
Package holder implements a bearer escrow, also known as a paper wallet.

A depositor picks a code and a redemption secret. Funds are stored in a
holder whose address is derived from the code and the sha256 commitment of
the secret, so the address can be recomputed by anyone, yet redeemed only by
whoever knows the secret itself. Possession of the secret is possession of
the funds.

	store(code, sha256(secret), amount)     creates and funds the holder
	redeem(code, secret, destination)       drains the holder and removes it

Holder addresses are program derived addresses: sha256 digests that are
guaranteed not to be valid ed25519 public keys, so no private key can ever
sign for them. See ProgramAddressScheme for the exact derivation.
*/
package holder
