package server

// Answer is the structured code and message pair every user-visible failure
// (and bare success) serializes to. Codes are stable integers deployed
// clients switch on; changing them breaks client error handling.
type Answer struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func success() Answer {
	return Answer{Code: 0, Msg: "Success"}
}

func notFound() Answer {
	return Answer{Code: 1, Msg: "Error, endpoint does not exists"}
}

func cantAuth() Answer {
	return Answer{Code: 2, Msg: "Error, could not authenticate"}
}

func positionCantUpdate() Answer {
	return Answer{Code: 3, Msg: "Error, could not update position"}
}

func hashCantQuery() Answer {
	return Answer{Code: 4, Msg: "Error, hash not available"}
}

func binaryCantCreate() Answer {
	return Answer{Code: 5, Msg: "Error, could not create binary data"}
}

func positionCantQuery() Answer {
	return Answer{Code: 6, Msg: "Error, could not get position"}
}

func cantRegister() Answer {
	return Answer{Code: 7, Msg: "Error, could not register"}
}

func cantLogin() Answer {
	return Answer{Code: 8, Msg: "Error, could not login"}
}

func audiobooksCantQuery() Answer {
	return Answer{Code: 9, Msg: "Error, could not query audiobooks"}
}
