package main

import (
	"oss.terrastruct.com/diaelem/elemcli"
	"oss.terrastruct.com/diaelem/lib/xmain"
)

func main() {
	xmain.Main(elemcli.Run)
}
