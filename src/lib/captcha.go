package lib

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"carlink/src/config"
)

type CaptchaVerification struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// VerifyCaptcha posts the solution to the verification service. A
// transport failure is reported as an unsuccessful verification rather
// than an error so callers treat both uniformly.
func VerifyCaptcha(solution string) CaptchaVerification {
	payload := map[string]string{
		"solution": solution,
		"secret":   os.Getenv("CAPTCHA_SECRET"),
		"sitekey":  os.Getenv("CAPTCHA_SITEKEY"),
	}
	body, err := json.Marshal(&payload)
	if err != nil {
		return CaptchaVerification{Success: false, Errors: []string{"failed to verify captcha"}}
	}
	res, err := http.Post(config.CaptchaVerifyURL(), "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("Error verifying captcha: %s\n", err.Error())
		return CaptchaVerification{Success: false, Errors: []string{"failed to verify captcha"}}
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		log.Printf("Error reading captcha response: %s\n", err.Error())
		return CaptchaVerification{Success: false, Errors: []string{"failed to verify captcha"}}
	}
	var verification CaptchaVerification
	if err := json.Unmarshal(resBody, &verification); err != nil {
		log.Printf("Error decoding captcha response: %s\n", err.Error())
		return CaptchaVerification{Success: false, Errors: []string{"failed to verify captcha"}}
	}
	return verification
}
