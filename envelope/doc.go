// Package envelope encrypts payloads of any size to a Medusa oracle.
//
// The payload is sealed with NaCl secretbox (XSalsa20-Poly1305) under a
// fresh key, and the key is encrypted to the oracle's distributed public
// key with HGamal. The HGamal proof is bound to a [Label], so the oracle
// only re-encrypts the key for requests from the platform the sender
// chose.
//
// Sender:
//
//	label, err := envelope.NewLabel(medusaPub, platform, encryptor)
//	bundle, err := envelope.EncryptToMedusa(suite, rand.Reader, data, medusaPub, label)
//
// Recipient, once the oracle has delivered a re-encryption to kp.Public:
//
//	kp, err := envelope.KeyForDecryption(suite, rand.Reader)
//	data, err := envelope.DecryptFromMedusa(suite, kp.Secret, medusaPub, bundle, re)
package envelope
