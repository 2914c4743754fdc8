package http

import "smartcars-insurance/internal/intent"

type chatReq struct {
	Question string `json:"question"`
}

type chatResp struct {
	Answer string        `json:"answer"`
	Intent intent.Intent `json:"intent"`
}
