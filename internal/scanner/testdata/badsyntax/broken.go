package badsyntax

func Broken( {
