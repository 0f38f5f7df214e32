package project

func {
