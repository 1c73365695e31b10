package feistel

// Sentinel is the block TransformCompat returns for any rejected input.
const Sentinel = "0000000000000000"

// Transform encrypts or decrypts a block given in its 16-digit binary form
// under a key in the same form. mode must be "encrypt" or "decrypt".
//
// Block, key and mode are all validated before any round runs. A malformed
// block or key yields a *FormatError, an unknown mode an *InvalidModeError.
func Transform(block, key, mode string) (string, error) {
	b, err := ParseBlock(block)
	if err != nil {
		log.Debugf("Rejected block: %v", err)
		return "", err
	}
	k, err := ParseKey(key)
	if err != nil {
		log.Debugf("Rejected key: %v", err)
		return "", err
	}
	m, err := ParseMode(mode)
	if err != nil {
		log.Debugf("Rejected mode: %v", err)
		return "", err
	}

	return FormatBlock(NewCipher(k).process(m, b, nil)), nil
}

// TransformCompat behaves like Transform but never fails: on any error it logs
// the failure and returns Sentinel. Callers cannot tell a format error from a
// mode error, nor a rejected input from a transform whose result happens to
// be all zeros. New code should use Transform.
func TransformCompat(block, key, mode string) string {
	out, err := Transform(block, key, mode)
	if err != nil {
		log.Errorf("Transform failed, returning sentinel: %v", err)
		return Sentinel
	}
	return out
}
