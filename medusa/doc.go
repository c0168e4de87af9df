// Package medusa is the client side of the Medusa encryption oracle.
//
// An encryptor seals data to the oracle's distributed public key; the
// oracle later re-encrypts the sealed key to any reader the platform
// contract approves, without ever seeing the key itself.
//
//	conn, err := medusa.Connect(ctx, oracle)
//	if err != nil {
//		return err
//	}
//	payload, err := conn.Encrypt(data, platform, encryptor)
//	id, err := conn.Submit(ctx, payload, link, platform, encryptor)
//
// A reader derives a keypair from a wallet signature, asks the platform
// for access with kp.Public, and once the re-encryption is delivered:
//
//	kp, err := conn.DeriveKeypair(signature)
//	data, err := conn.Decrypt(payload, reencryption, kp.Secret)
//
// Logging goes through github.com/op/go-logging under the module name
// "medusa"; see [SetupLogging].
package medusa
